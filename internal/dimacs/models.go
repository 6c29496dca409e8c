package dimacs

import (
	"fmt"

	"github.com/rhartert/dimacs"
)

// ReadModels returns the list of models contained in filename. Each line is
// one model, represented (same as a DIMACS clause) as signed integers, one
// per variable, terminated by 0.
func ReadModels(filename string) ([][]bool, error) {
	r, err := open(filename, false)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.models, nil
}

// modelBuilder adapts the models file format (one model per "clause" line,
// no problem line) to dimacs.Builder.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("dimacs: models file should not have a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(tmp []int) error {
	model := make([]bool, len(tmp))
	for i, l := range tmp {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
