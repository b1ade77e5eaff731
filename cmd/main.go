// Terminal replay of heap animations, handy when poking at the engine
// without the web UI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"heapvis/internal/heap"
	"heapvis/internal/input"
	"heapvis/internal/pkg/random"
	"heapvis/internal/vis"
)

// console prints each frame and paces the animation with a fixed delay,
// the way the original UI slept between renders.
func console(delay time.Duration, dot bool) heap.ObserverFunc[int64] {
	return func(elements []int64, swapped *heap.Swap) {
		if swapped == nil {
			fmt.Printf("layout          %s\n", vis.Array(elements))
		} else {
			fmt.Printf("swap %3d <-> %-3d %s\n", swapped.A, swapped.B, vis.Array(elements))
		}

		if dot {
			fmt.Println(vis.Tree(elements, swapped))
		}

		time.Sleep(delay)
	}
}

func main() {
	var values = pflag.String("values", "10, 20, 15, 30, 40,1,6,55,90,87", "comma separated integers")
	var polarity = pflag.String("polarity", "min", "heap order: min or max")
	var randomSize = pflag.Int("random", 0, "ignore --values, generate N random integers in [1,100] instead")
	var inserts = pflag.Int64Slice("insert", nil, "values to insert after the build")
	var deletes = pflag.Int("delete", 0, "delete-root count after the inserts")
	var delay = pflag.Duration("delay", time.Second, "pause after each frame")
	var dot = pflag.Bool("dot", false, "print the DOT tree of every frame")

	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	p, err := heap.ParsePolarity(*polarity)
	if err != nil {
		log.Fatal().Err(err).Msg("bad --polarity")
	}

	var list []int64
	if *randomSize > 0 {
		list = random.Ints(*randomSize, 1, 100)
	} else {
		list, err = input.ParseList(*values)
		if err != nil {
			// malformed input falls back to an empty list
			log.Warn().Err(err).Msg("ignoring --values")
			list = []int64{}
		}
	}

	obs := console(*delay, *dot)
	h := heap.New[int64](p)

	fmt.Printf("building a %s heap from %s\n", p, vis.Array(list))
	h.Build(list, obs)

	for _, v := range *inserts {
		fmt.Printf("insert %d\n", v)
		h.Insert(v, obs)
	}

	for range *deletes {
		root, err := h.DeleteRoot(obs)
		if err != nil {
			log.Warn().Msg("heap is empty!")
			break
		}
		fmt.Printf("deleted root %d\n", root)
	}

	fmt.Printf("final state     %s\n", vis.Array(h.Snapshot()))
	if *dot {
		fmt.Println(vis.Tree(h.Snapshot(), nil))
	}
}
