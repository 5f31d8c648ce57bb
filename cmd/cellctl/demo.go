package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ucell/cell"
	"github.com/joshuapare/ucell/offheap"
)

var demoBackend string

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the integer and record aliasing scenarios",
		Long: `The demo command creates cells, duplicates their handles and mutates
them through one handle while reading through another, printing every
observation.

Example:
  cellctl demo
  cellctl demo --backend offheap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(demoBackend)
		},
	}
	cmd.Flags().StringVar(&demoBackend, "backend", "heap", "Storage backend: heap or offheap")
	return cmd
}

// record is the two-field value of the record scenario.
type record struct {
	X uint
	Y float32
}

func (r *record) Sum() float32 {
	return r.Y + float32(r.X)
}

func (r *record) Zero() {
	r.X = 0
	r.Y = 0.0
}

// aliasCell is the handle surface both backends share.
type aliasCell[T, C any] interface {
	Get() T
	Set(v T)
	Ptr() *T
	Clone() C
	Free() error
}

type observation struct {
	Scenario string `json:"scenario"`
	Step     string `json:"step"`
	Got      string `json:"got"`
	Want     string `json:"want"`
	OK       bool   `json:"ok"`
}

type recorder struct {
	scenario string
	obs      []observation
}

func (r *recorder) check(step string, got, want any) {
	g, w := fmt.Sprint(got), fmt.Sprint(want)
	r.obs = append(r.obs, observation{Scenario: r.scenario, Step: step, Got: g, Want: w, OK: g == w})
}

func integerScenario[C aliasCell[int, C]](create func(int) (C, error)) ([]observation, error) {
	rec := &recorder{scenario: "integer"}

	v, err := create(5)
	if err != nil {
		return nil, err
	}
	rec.check("read(v)", v.Get(), 5)

	v.Set(10)
	rec.check("read(v) after write 10", v.Get(), 10)

	k := v.Clone()
	k.Set(30)
	rec.check("read(v) after write 30 via k", v.Get(), 30)
	rec.check("read(k)", k.Get(), 30)

	if err := k.Free(); err != nil {
		return rec.obs, err
	}
	return rec.obs, nil
}

func recordScenario[C aliasCell[record, C]](create func(record) (C, error)) ([]observation, error) {
	rec := &recorder{scenario: "record"}

	v, err := create(record{X: 50, Y: 3.14})
	if err != nil {
		return nil, err
	}
	rec.check("v.x", v.Ptr().X, 50)
	rec.check("v.y", v.Ptr().Y, float32(3.14))

	k := v.Clone()
	v.Ptr().X = 30
	v.Ptr().Y = -1.5
	rec.check("k.x after v.x=30", k.Ptr().X, 30)
	rec.check("k.y after v.y=-1.5", k.Ptr().Y, float32(-1.5))
	rec.check("v.sum()", v.Ptr().Sum(), float32(28.5))
	rec.check("k.sum()", k.Ptr().Sum(), float32(28.5))

	v.Ptr().Zero()
	rec.check("v.sum() after zero", v.Ptr().Sum(), float32(0))
	rec.check("k.sum() after zero", k.Ptr().Sum(), float32(0))

	if err := v.Free(); err != nil {
		return rec.obs, err
	}
	return rec.obs, nil
}

func runDemo(backend string) error {
	var (
		ints, recs []observation
		err        error
	)
	switch backend {
	case "heap":
		ints, err = integerScenario(func(v int) (cell.Cell[int], error) { return cell.New(v), nil })
		if err == nil {
			recs, err = recordScenario(func(v record) (cell.Cell[record], error) { return cell.New(v), nil })
		}
	case "offheap":
		ints, err = integerScenario(offheap.New[int])
		if err == nil {
			recs, err = recordScenario(offheap.New[record])
		}
	default:
		return fmt.Errorf("unknown backend %q (want heap or offheap)", backend)
	}
	if err != nil {
		return err
	}

	all := append(ints, recs...)
	if jsonOut {
		return printJSON(all)
	}

	printInfo("Backend: %s\n", backend)
	failed := 0
	for _, o := range all {
		mark := "ok"
		if !o.OK {
			mark = "FAIL"
			failed++
		}
		printInfo("  [%s] %-30s %-8s %s\n", o.Scenario, o.Step, o.Got, mark)
		if !o.OK {
			printVerbose("      want %s\n", o.Want)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d observation(s) did not match", failed)
	}
	return nil
}
