package y2024

import (
	"github.com/katalvlaran/gridsearch/memo"
	"github.com/katalvlaran/gridsearch/puzzle"
)

func init() {
	puzzle.Register(2024, 11, "Plutonian Pebbles", puzzle.Func(PlutonianPebbles))
}

// PlutonianPebbles counts stones after 25 and 75 blinks.
func PlutonianPebbles(input string) (puzzle.Answer, error) {
	stones, err := puzzle.Ints(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	p := memo.NewPebbles()
	short, err := p.CountAll(stones, 25)
	if err != nil {
		return puzzle.Answer{}, err
	}
	long, err := p.CountAll(stones, 75)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.NewAnswer(short, long), nil
}
