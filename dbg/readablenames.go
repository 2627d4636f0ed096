package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary comparable values (points, segments) into random
// readable names, which is much easier on the eyes than a soup of
// coordinates when following the intersection search. Names are generated
// lazily and memoized forever; that leaks, but only if you actually use it.

var memo = map[interface{}]string{}

func init() {
	// Names are handed out in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer
	// to the same value between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
