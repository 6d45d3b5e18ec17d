package cvec

import (
	"bytes"
	"fmt"
	"io"
	"unsafe"

	"github.com/vk/cligram/internal/cvar"
)

// excludeKeywords is the process-wide mode deciding whether keyword entries
// are included when argument vectors are assembled for callbacks. The core
// only stores the flag; consumers such as the bind package branch on it.
// Unsynchronized: concurrent use must be serialized by the caller.
var excludeKeywords bool

// SetExcludeKeywords switches the process-wide keyword-exclusion mode.
func SetExcludeKeywords(on bool) { excludeKeywords = on }

// ExcludeKeywords reports the process-wide keyword-exclusion mode.
func ExcludeKeywords() bool { return excludeKeywords }

// Vec is an optionally named, ordered vector of variable records. The zero
// value and a nil *Vec both behave as an empty vector for read operations.
type Vec struct {
	name string
	vars []cvar.Var
}

// New creates a vector of n zero-initialized records of type cvar.Err.
// n may be 0; elements are then added incrementally with Add or AppendVar.
func New(n int) *Vec {
	v := &Vec{}
	if n > 0 {
		v.vars = make([]cvar.Var, n)
	}
	return v
}

// FromVar creates a one-element vector holding a deep copy of cv.
func FromVar(cv *cvar.Var) *Vec {
	if cv == nil {
		return nil
	}
	v := New(0)
	if v.AppendVar(cv) == nil {
		return nil
	}
	return v
}

// Start creates the conventional callback vector: slot 0 holds the whole
// matched command line as a Rest-typed record named "cmd"; bound arguments
// are appended after it and iterated with Each1.
func Start(cmd string) *Vec {
	v := New(1)
	cv := v.I(0)
	cv.SetType(cvar.Rest)
	cv.SetName("cmd")
	cv.SetString(cmd)
	return v
}

// Reset returns the vector to the empty, unnamed state New(0) produces,
// discarding every element. Safe on nil.
func (v *Vec) Reset() {
	if v == nil {
		return
	}
	for i := range v.vars {
		v.vars[i].Reset()
	}
	v.vars = nil
	v.name = ""
}

// Len returns the element count. 0 for a nil vector.
func (v *Vec) Len() int {
	if v == nil {
		return 0
	}
	return len(v.vars)
}

// Add grows the vector by one zero-initialized record of type t and returns
// a pointer to the new slot. Growth reallocates the whole storage: every
// previously obtained element pointer is invalid after Add returns.
func (v *Vec) Add(t cvar.Type) *cvar.Var {
	if v == nil {
		return nil
	}
	grown := make([]cvar.Var, len(v.vars)+1)
	copy(grown, v.vars)
	v.vars = grown
	cv := &v.vars[len(v.vars)-1]
	cv.SetType(t)
	return cv
}

// AppendVar appends a deep copy of src and returns the new tail slot, or
// nil when v or src is nil. Invalidates prior element pointers like Add.
func (v *Vec) AppendVar(src *cvar.Var) *cvar.Var {
	if v == nil || src == nil {
		return nil
	}
	tail := v.Add(src.Type())
	tail.CopyFrom(src)
	return tail
}

// Del removes the record del currently occupies, identified by pointer, and
// returns the resulting length plus whether del was found. A miss leaves
// the vector untouched. del must have been resolved from v after its last
// mutation; a stale pointer is simply not found.
func (v *Vec) Del(del *cvar.Var) (int, bool) {
	if v.Len() == 0 {
		return 0, false
	}
	i := 0
	for ; i < len(v.vars); i++ {
		if &v.vars[i] == del {
			break
		}
	}
	if i >= len(v.vars) {
		return len(v.vars), false
	}
	return v.DelI(i), true
}

// DelI removes the record at index i by shifting later records left and
// shrinking storage. Out-of-range indexes are a no-op. Returns the
// resulting length.
func (v *Vec) DelI(i int) int {
	if v.Len() == 0 || i < 0 || i >= len(v.vars) {
		return v.Len()
	}
	shrunk := make([]cvar.Var, len(v.vars)-1)
	copy(shrunk, v.vars[:i])
	copy(shrunk[i:], v.vars[i+1:])
	v.vars = shrunk
	return len(v.vars)
}

// I returns the record at index i, or nil when i is out of range.
func (v *Vec) I(i int) *cvar.Var {
	if v == nil || i < 0 || i >= len(v.vars) {
		return nil
	}
	return &v.vars[i]
}

// IStr returns the string value of the record at index i, or "" when i is
// out of range or the record is not string-typed. Lossy: an empty stored
// string is indistinguishable from a miss.
func (v *Vec) IStr(i int) string {
	cv := v.I(i)
	if cv == nil || !cv.Type().IsString() {
		return ""
	}
	return cv.StringVal()
}

// Each yields the elements in storage order:
//
//	var cv *cvar.Var
//	for cv = vv.Each(nil); cv != nil; cv = vv.Each(cv) {
//		...
//	}
//
// prev must be the previously yielded pointer (nil to start). Iteration
// must not be interleaved with mutation of v.
func (v *Vec) Each(prev *cvar.Var) *cvar.Var {
	if v == nil {
		return nil
	}
	if prev == nil {
		if len(v.vars) > 0 {
			return &v.vars[0]
		}
		return nil
	}
	return v.next(prev)
}

// Each1 is Each starting at index 1, for vectors where slot 0 holds the
// whole command line and the rest are bound arguments.
func (v *Vec) Each1(prev *cvar.Var) *cvar.Var {
	if v == nil {
		return nil
	}
	if prev == nil {
		if len(v.vars) > 1 {
			return &v.vars[1]
		}
		return nil
	}
	return v.next(prev)
}

// next returns the element after prev, located by pointer identity.
func (v *Vec) next(prev *cvar.Var) *cvar.Var {
	for i := range v.vars {
		if &v.vars[i] == prev {
			if i < len(v.vars)-1 {
				return &v.vars[i+1]
			}
			return nil
		}
	}
	return nil
}

// Dup returns a deep copy of v: new storage, copied name, element-wise
// copied records. nil in, nil out.
func (v *Vec) Dup() *Vec {
	if v == nil {
		return nil
	}
	dup := New(len(v.vars))
	dup.name = v.name
	for i := range v.vars {
		dup.vars[i].CopyFrom(&v.vars[i])
	}
	return dup
}

// Find returns the first record whose name equals name. The empty name acts
// as a wildcard matching the first unnamed record.
func (v *Vec) Find(name string) *cvar.Var {
	for cv := v.Each(nil); cv != nil; cv = v.Each(cv) {
		if cv.Name() != "" {
			if name != "" && cv.Name() == name {
				return cv
			}
		} else if name == "" {
			return cv
		}
	}
	return nil
}

// FindKeyword is Find restricted to named keyword (constant) records.
func (v *Vec) FindKeyword(name string) *cvar.Var {
	for cv := v.Each(nil); cv != nil; cv = v.Each(cv) {
		if cv.Name() != "" && cv.Name() == name && cv.IsConst() {
			return cv
		}
	}
	return nil
}

// FindVar is Find restricted to named non-keyword (bound variable) records.
func (v *Vec) FindVar(name string) *cvar.Var {
	for cv := v.Each(nil); cv != nil; cv = v.Each(cv) {
		if cv.Name() != "" && cv.Name() == name && !cv.IsConst() {
			return cv
		}
	}
	return nil
}

// FindStr returns the string value of the first record named name, or ""
// when there is no such record or it is not string-typed. The two misses
// are indistinguishable; callers needing the difference use Find.
func (v *Vec) FindStr(name string) string {
	cv := v.Find(name)
	if cv == nil || !cv.Type().IsString() {
		return ""
	}
	return cv.StringVal()
}

// Name returns the vector's name, or "" when unnamed.
func (v *Vec) Name() string {
	if v == nil {
		return ""
	}
	return v.name
}

// SetName names the vector; the empty string clears the name. The value is
// captured before the old name is dropped, so renaming a vector to a slice
// of its own current name is safe.
func (v *Vec) SetName(name string) { v.name = name }

// Size returns the approximate number of bytes v owns, for memory
// accounting and diagnostics.
func (v *Vec) Size() int {
	sz := int(unsafe.Sizeof(*v))
	sz += len(v.name)
	for cv := v.Each(nil); cv != nil; cv = v.Each(cv) {
		sz += cv.Size()
	}
	return sz
}

// Print pretty-prints the vector to w, one indexed line per record.
func (v *Vec) Print(w io.Writer) error {
	if name := v.Name(); name != "" {
		if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
			return err
		}
	}
	i := 0
	for cv := v.Each(nil); cv != nil; cv = v.Each(cv) {
		var err error
		if cv.Name() != "" {
			_, err = fmt.Fprintf(w, "%d : %s = %s\n", i, cv.Name(), cv.ValueString())
		} else {
			_, err = fmt.Fprintf(w, "%d : %s\n", i, cv.ValueString())
		}
		if err != nil {
			return err
		}
		i++
	}
	return nil
}

// WriteBuf appends the same pretty form Print emits into b.
func (v *Vec) WriteBuf(b *bytes.Buffer) {
	i := 0
	for cv := v.Each(nil); cv != nil; cv = v.Each(cv) {
		fmt.Fprintf(b, "%d : %s = %s\n", i, cv.Name(), cv.ValueString())
		i++
	}
}
