package tools

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/flagcell/flagcell/std/log"
	"github.com/flagcell/flagcell/std/types/flagcell"
	"github.com/flagcell/flagcell/std/utils"
	"github.com/flagcell/flagcell/std/utils/toolutils"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// Script is a scenario driving one cell.
type Script struct {
	// Initial value of the cell.
	Value any `json:"value"`
	// Operations, run in order.
	Steps []Step `json:"steps"`
}

// Step is one operation of a Script.
type Step struct {
	Op     string `json:"op"`
	Handle string `json:"handle"`
	From   string `json:"from"`
	Guard  string `json:"guard"`
	Set    any    `json:"set"`
	Reason string `json:"reason"`
	// Expected result; the run fails on mismatch when set.
	Expect string `json:"expect"`
}

type releaser interface {
	Release()
}

// Replay runs scripted operations against a cell and prints each result.
type Replay struct {
	owner     *flagcell.Owner[any]
	ownerGone bool
	handles   map[string]*flagcell.Handle[any]
	guards    map[string]releaser
	status    toolutils.StatusPrinter
}

// ParseScript decodes a scenario, rejecting unknown fields.
func ParseScript(data []byte) (*Script, error) {
	script := &Script{}
	if err := yaml.UnmarshalWithOptions(data, script, yaml.Strict()); err != nil {
		return nil, err
	}
	return script, nil
}

// NewReplay creates a replay printing to w.
func NewReplay(w io.Writer) *Replay {
	return &Replay{status: toolutils.StatusPrinter{File: w, Padding: 16}}
}

func (r *Replay) String() string {
	return "replay"
}

// Run executes the script on a fresh cell.
// Handles and guards still held at the end are released, then the owner is closed.
func (r *Replay) Run(script *Script) error {
	r.owner = flagcell.New(script.Value)
	r.ownerGone = false
	r.handles = map[string]*flagcell.Handle[any]{}
	r.guards = map[string]releaser{}
	defer r.cleanup()

	for i, step := range script.Steps {
		res, err := r.step(step)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		r.status.Print(fmt.Sprintf("%d %s", i, step.Op), res)
		if step.Expect != "" && step.Expect != res {
			return fmt.Errorf("step %d (%s): expected %q, got %q", i, step.Op, step.Expect, res)
		}
	}
	return nil
}

func (r *Replay) cleanup() {
	for _, g := range r.guards {
		g.Release()
	}
	for _, h := range r.handles {
		h.Release()
	}
	r.owner.Close()
}

func (r *Replay) step(s Step) (string, error) {
	switch s.Op {
	case "mint":
		if r.ownerGone {
			return errName(flagcell.ErrReleased), nil
		}
		return r.putHandle(s.Handle, r.owner.NewHandle())
	case "clone":
		from, err := r.handle(s.From)
		if err != nil {
			return "", err
		}
		return r.putHandle(s.Handle, from.Clone())
	case "release":
		h, err := r.handle(s.Handle)
		if err != nil {
			return "", err
		}
		h.Release()
		delete(r.handles, s.Handle)
		return "ok", nil
	case "enable":
		return utils.If(r.owner.Enable().IsSet(), "changed", "unchanged"), nil
	case "disable":
		return utils.If(r.owner.Disable().IsSet(), "changed", "unchanged"), nil
	case "close":
		r.owner.Close()
		r.ownerGone = true
		return "ok", nil
	case "force-enable":
		h, err := r.handle(s.Handle)
		if err != nil {
			return "", err
		}
		return h.UnsafeForceEnable(s.Reason).Kind().String(), nil
	case "borrow":
		h, err := r.handle(s.Handle)
		if err != nil {
			return "", err
		}
		res := h.TryBorrow()
		out := res.String()
		if g, ok := res.Get(); ok {
			r.putGuard(s.Guard, g)
		}
		return out, nil
	case "borrow-mut":
		h, err := r.handle(s.Handle)
		if err != nil {
			return "", err
		}
		res := h.TryBorrowMut()
		g, ok := res.Get()
		if ok && s.Set != nil {
			g.Set(s.Set)
		}
		out := res.String()
		if ok {
			r.putGuard(s.Guard, g)
		}
		return out, nil
	case "unguard":
		g, ok := r.guards[s.Guard]
		if !ok {
			return "", fmt.Errorf("unknown guard %q", s.Guard)
		}
		g.Release()
		delete(r.guards, s.Guard)
		return "ok", nil
	case "extract":
		v, err := r.owner.TryExtract()
		if err != nil {
			return errName(err), nil
		}
		r.ownerGone = true
		return fmt.Sprint(v), nil
	case "refcount":
		if s.Handle == "" {
			return strconv.Itoa(r.owner.RefCount()), nil
		}
		h, err := r.handle(s.Handle)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(h.RefCount()), nil
	case "enabled":
		if s.Handle == "" {
			return strconv.FormatBool(r.owner.IsEnabled()), nil
		}
		h, err := r.handle(s.Handle)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(h.IsEnabled()), nil
	default:
		return "", fmt.Errorf("unknown op %q", s.Op)
	}
}

func (r *Replay) handle(name string) (*flagcell.Handle[any], error) {
	h, ok := r.handles[name]
	if !ok {
		return nil, fmt.Errorf("unknown handle %q", name)
	}
	return h, nil
}

func (r *Replay) putHandle(name string, h *flagcell.Handle[any]) (string, error) {
	if name == "" {
		h.Release()
		return "", errors.New("handle name is required")
	}
	if old, ok := r.handles[name]; ok {
		old.Release()
	}
	r.handles[name] = h
	return "ok", nil
}

func (r *Replay) putGuard(name string, g releaser) {
	if name == "" {
		// not kept, so the borrow ends with the step
		g.Release()
		return
	}
	if old, ok := r.guards[name]; ok {
		old.Release()
	}
	r.guards[name] = g
}

func errName(err error) string {
	switch {
	case errors.Is(err, flagcell.ErrBusy):
		return "busy"
	case errors.Is(err, flagcell.ErrDisabled):
		return "disabled"
	case errors.Is(err, flagcell.ErrConflict):
		return "conflict"
	case errors.Is(err, flagcell.ErrAbsent):
		return "absent"
	case errors.Is(err, flagcell.ErrReleased):
		return "released"
	default:
		return err.Error()
	}
}

func (r *Replay) run(cmd *cobra.Command, args []string) {
	r.status = toolutils.StatusPrinter{File: cmd.OutOrStdout(), Padding: 16}

	script := &Script{}
	if err := toolutils.ReadYaml(script, args[0]); err != nil {
		log.Fatal(r, "Unable to read script", "err", err)
		return
	}
	if err := r.Run(script); err != nil {
		log.Fatal(r, "Replay failed", "err", err)
	}
}
