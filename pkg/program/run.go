package program

import (
	"context"
	"sync"

	"github.com/buildbarn/bb-atomic/pkg/atomic"
	"github.com/buildbarn/bb-atomic/pkg/util"
)

// Routine that can be executed as part of a program, such as a
// diagnostics web server or a stress test scenario.
//
// Each routine is capable of launching additional routines that either
// run as siblings, or as dependencies of the current routine and its
// siblings. Siblings are all terminated at the same time, while
// dependencies are only terminated after all of the siblings of the
// current routine have completed.
type Routine func(ctx context.Context, siblingsGroup, dependenciesGroup Group) error

// Group of routines. This interface can be used to launch additional
// routines.
type Group interface {
	Go(routine Routine)
}

// groupsRoot contains bookkeeping that is shared across all groups
// within the current program.
type groupsRoot struct {
	errorLogger         util.ErrorLogger
	siblingsGroupsCount sync.WaitGroup
}

// siblingsGroup is a group of routines that are all siblings with
// respect to each other. The number of active siblings drops to zero
// exactly once, after which the group may no longer be extended.
type siblingsGroup struct {
	root                *groupsRoot
	siblingsActive      atomic.Int
	siblingsContext     context.Context
	dependenciesContext context.Context
	dependenciesCancel  context.CancelFunc
}

// newSiblingsGroup constructs a new siblingsGroup that contains exactly
// one routine. The caller MUST call runRoutine() on it after creation.
func newSiblingsGroup(siblingsContext context.Context, root *groupsRoot) *siblingsGroup {
	dependenciesContext, dependenciesCancel := context.WithCancel(context.Background())
	sg := &siblingsGroup{
		root:                root,
		siblingsContext:     siblingsContext,
		dependenciesContext: dependenciesContext,
		dependenciesCancel:  dependenciesCancel,
	}
	sg.siblingsActive.Initialize(1)
	root.siblingsGroupsCount.Add(1)
	return sg
}

func (sg *siblingsGroup) runRoutine(routine Routine) {
	if err := routine(
		sg.siblingsContext,
		sg,
		dependenciesGroup{siblingsGroup: sg},
	); err != nil {
		sg.root.errorLogger.Log(err)
	}

	if sg.siblingsActive.DecAndTest() {
		// This is the last sibling that terminated. We can now
		// safely terminate our dependencies.
		sg.dependenciesCancel()
		sg.root.siblingsGroupsCount.Done()
	}
}

func (sg *siblingsGroup) Go(routine Routine) {
	for {
		active := sg.siblingsActive.Get()
		if active <= 0 {
			panic("Attempted to create a goroutine in a group that is already completed")
		}
		if sg.siblingsActive.CompareAndSwap(active, active+1) {
			break
		}
	}
	go sg.runRoutine(routine)
}

type dependenciesGroup struct {
	siblingsGroup *siblingsGroup
}

func (dg dependenciesGroup) Go(routine Routine) {
	sg := dg.siblingsGroup
	if sg.siblingsActive.Get() <= 0 {
		panic("Attempted to create a goroutine in a group that is already completed")
	}

	// Create a new siblings group, so that this newly spawned
	// routine can also have its own set of siblings.
	childSG := newSiblingsGroup(sg.dependenciesContext, sg.root)
	go childSG.runRoutine(routine)
}

// run a routine and all of the routines that it spawns, returning once
// all of them have completed.
func run(ctx context.Context, errorLogger util.ErrorLogger, routine Routine) {
	root := groupsRoot{
		errorLogger: errorLogger,
	}
	newSiblingsGroup(ctx, &root).runRoutine(routine)
	root.siblingsGroupsCount.Wait()
}
