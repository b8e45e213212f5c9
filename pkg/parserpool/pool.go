// Package parserpool provides a pool of gnparser instances for
// concurrent scientific-name parsing. This is a pure package: parsing
// is computation, not I/O.
package parserpool

import (
	"fmt"
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool hands out gnparser instances for concurrent parsing, one pool
// per nomenclatural code.
type Pool interface {
	// Parse parses a scientific name under the given nomenclatural
	// code. Safe for concurrent use; blocks while all parsers are
	// busy.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Close shuts the pools down. The pool must not be used after.
	Close()
}

type poolImpl struct {
	botanicalCh  chan gnparser.GNparser
	zoologicalCh chan gnparser.GNparser
}

// NewPool creates parser pools with jobsNum workers each; 0 means
// runtime.NumCPU(). Herbarium documents are overwhelmingly botanical,
// but the category configuration allows zoological collections, so
// both pools exist.
func NewPool(jobsNum int) Pool {
	size := jobsNum
	if size == 0 {
		size = runtime.NumCPU()
	}

	botCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Botanical))
	zooCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Zoological))

	return &poolImpl{
		botanicalCh:  gnparser.NewPool(botCfg, size),
		zoologicalCh: gnparser.NewPool(zooCfg, size),
	}
}

func (p *poolImpl) Parse(
	nameString string,
	code nomcode.Code,
) (parsed.Parsed, error) {
	var ch chan gnparser.GNparser
	switch code {
	case nomcode.Botanical:
		ch = p.botanicalCh
	case nomcode.Zoological:
		ch = p.zoologicalCh
	default:
		return parsed.Parsed{}, fmt.Errorf(
			"unsupported nomenclatural code: %v", code,
		)
	}

	parser := <-ch
	res := parser.ParseName(nameString)
	ch <- parser

	return res, nil
}

func (p *poolImpl) Close() {
	close(p.botanicalCh)
	for range p.botanicalCh {
	}
	close(p.zoologicalCh)
	for range p.zoologicalCh {
	}
}
