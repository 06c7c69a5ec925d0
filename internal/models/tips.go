package models

import "math/rand/v2"

var tips = [...]string{
	"To open an existing text file, click on 'File' in the menu bar and select 'Open.' " +
		"Then, choose the file from your system.",
	"To create a new tab, click on 'File' in the menu bar and select 'New Tab.'",
	"To save the current tab's content, click on 'File' and select 'Save' or 'Save As' to specify a new file name.",
	"To find specific text within the current tab, click on 'Edit' in the menu bar and select 'Find.' " +
		"Enter the text you want to find in the dialog box and click 'Find.'",
}

// Tips returns the fixed tip set.
func Tips() []string {
	return append([]string(nil), tips[:]...)
}

// TipPicker draws tips uniformly at random.
type TipPicker struct {
	rng *rand.Rand
}

// NewTipPicker uses src for randomness; nil selects a randomly seeded source.
func NewTipPicker(src rand.Source) *TipPicker {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &TipPicker{rng: rand.New(src)}
}

func (p *TipPicker) Next() string {
	return tips[p.rng.IntN(len(tips))]
}
