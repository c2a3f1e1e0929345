package cassowary

import "sort"

// VariableSet is an ordered, deduplicated collection of Variables, kept
// sorted by id. The solver uses one VariableSet per parametric variable
// as its column index (columns[p] = the basic variables whose row
// mentions p), giving Suggest/RemoveConstraint/optimize direct access to
// exactly the rows a pivot must touch instead of a full tableau scan —
// the sub-linear-per-update behaviour spec §5 requires for interactive
// dragging.
type VariableSet struct {
	members []Variable
	age     uint64
}

// NewVariableSet builds a VariableSet from the given variables.
func NewVariableSet(variables ...Variable) VariableSet {
	var s VariableSet
	for _, v := range variables {
		s.Add(v)
	}
	return s
}

func (s VariableSet) search(v Variable) (int, bool) {
	idx := sort.Search(len(s.members), func(i int) bool { return s.members[i] >= v })
	return idx, idx < len(s.members) && s.members[idx] == v
}

// Contains reports whether v is a member of s.
func (s VariableSet) Contains(v Variable) bool {
	_, ok := s.search(v)
	return ok
}

// Add inserts v, keeping the set sorted by id. A no-op if v is already a
// member.
func (s *VariableSet) Add(v Variable) {
	idx, ok := s.search(v)
	if ok {
		return
	}
	s.members = append(s.members, zeroVariable)
	copy(s.members[idx+1:], s.members[idx:])
	s.members[idx] = v
	s.age++
}

// Remove deletes v from s, if present.
func (s *VariableSet) Remove(v Variable) {
	idx, ok := s.search(v)
	if !ok {
		return
	}
	copy(s.members[idx:], s.members[idx+1:])
	s.members = s.members[:len(s.members)-1]
	s.age++
}

// Size returns the number of members.
func (s VariableSet) Size() int { return len(s.members) }

// IsEmpty reports whether s has no members.
func (s VariableSet) IsEmpty() bool { return len(s.members) == 0 }

// IsSingleton reports whether s has exactly one member.
func (s VariableSet) IsSingleton() bool { return len(s.members) == 1 }

// Single returns the set's sole member; only meaningful when
// IsSingleton() is true.
func (s VariableSet) Single() Variable {
	if len(s.members) == 0 {
		return zeroVariable
	}
	return s.members[0]
}

// Slice returns a copy of the set's members in id order. Copying avoids
// aliasing callers that intend to mutate s while iterating the result
// (e.g. Solver.substitute, which walks a column while rows are rewritten
// out from under it).
func (s VariableSet) Slice() []Variable {
	out := make([]Variable, len(s.members))
	copy(out, s.members)
	return out
}

func (s *VariableSet) currentAge() uint64 { return s.age }

// VariableIterator is a restartable, age-checked walk over a
// VariableSet's members, forward or backward.
type VariableIterator struct {
	members []Variable
	age     uint64
	owner   interface{ currentAge() uint64 }
	pos     int
	back    bool
}

func (it *VariableIterator) checkAge() {
	if it.owner.currentAge() != it.age {
		panic(ErrIteratorStale)
	}
}

// Reset restarts the iterator, re-snapshotting age.
func (it *VariableIterator) Reset(reverse bool) {
	it.back = reverse
	if reverse {
		it.pos = len(it.members)
	} else {
		it.pos = -1
	}
	it.age = it.owner.currentAge()
}

// Next advances the iterator, returning the next Variable and true, or
// zeroVariable and false once exhausted.
func (it *VariableIterator) Next() (Variable, bool) {
	it.checkAge()
	if it.back {
		it.pos--
		if it.pos < 0 {
			return zeroVariable, false
		}
	} else {
		it.pos++
		if it.pos >= len(it.members) {
			return zeroVariable, false
		}
	}
	return it.members[it.pos], true
}

// Iterate returns a forward VariableIterator over s's members.
func (s *VariableSet) Iterate() *VariableIterator {
	return &VariableIterator{members: s.members, age: s.age, owner: s, pos: -1}
}

// ReverseIterate returns a backward VariableIterator over s's members.
func (s *VariableSet) ReverseIterate() *VariableIterator {
	return &VariableIterator{members: s.members, age: s.age, owner: s, pos: len(s.members), back: true}
}
