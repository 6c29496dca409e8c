// Package dimacs loads DIMACS CNF instances and model files into a SAT
// solver. It is an external collaborator: the core sat package knows
// nothing about file formats.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/vellumsat/cdcl/sat"
)

// Writer is the subset of *sat.Solver a DIMACS instance is loaded into.
// Declared as an interface so tests can substitute a recording fake.
type Writer interface {
	AddVariable() int
	Add(lits ...sat.Literal) bool
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS reads the DIMACS CNF file at filename (optionally
// gzip-compressed) and loads its variables and clauses into w.
func LoadDIMACS(filename string, gzipped bool, w Writer) error {
	r, err := open(filename, gzipped)
	if err != nil {
		return fmt.Errorf("error reading file %q: %w", filename, err)
	}
	defer r.Close()

	b := &solverBuilder{w: w}
	return dimacs.ReadBuilder(r, b)
}

// solverBuilder adapts a Writer to the dimacs.Builder interface expected by
// github.com/rhartert/dimacs's streaming reader.
type solverBuilder struct {
	w Writer
}

func (b *solverBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: instance of type %q is not supported", problem)
	}
	for i := 0; i < nVars; i++ {
		b.w.AddVariable()
	}
	return nil
}

func (b *solverBuilder) Clause(tmp []int) error {
	clause := make([]sat.Literal, len(tmp))
	for i, l := range tmp {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	b.w.Add(clause...)
	return nil
}

func (b *solverBuilder) Comment(_ string) error {
	return nil
}
