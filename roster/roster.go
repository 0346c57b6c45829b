package roster

import (
	"math/rand"
	"sort"
)

// maxGroups caps how many lab groups a section is divided into, no matter
// how large the roster.
const maxGroups = 6

// targetGroupSize is the preferred number of students per group.
const targetGroupSize = 5

// Roster holds one section's students partitioned into numbered groups.
// Group numbers start at 1 and are contiguous.
type Roster struct {
	Section int
	Groups  map[int][]StudentName
}

// GroupNumbers returns the roster's group numbers in ascending order.
func (r *Roster) GroupNumbers() []int {
	nums := make([]int, 0, len(r.Groups))
	for n := range r.Groups {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// NewRoster shuffles a section's students and deals them into
// min(6, ceil(n/5)) groups round-robin, like a dealer dealing cards. Group
// sizes differ by at most one. The rng makes assignment reproducible; a
// nil rng leaves the input order unshuffled, which is useful in tests.
func NewRoster(section int, students []StudentName, rng *rand.Rand) *Roster {
	r := &Roster{Section: section, Groups: make(map[int][]StudentName)}

	n := len(students)
	if n == 0 {
		return r
	}

	shuffled := make([]StudentName, n)
	copy(shuffled, students)
	if rng != nil {
		rng.Shuffle(n, func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
	}

	ngroups := (n + targetGroupSize - 1) / targetGroupSize
	if ngroups > maxGroups {
		ngroups = maxGroups
	}

	for i, s := range shuffled {
		group := i%ngroups + 1
		r.Groups[group] = append(r.Groups[group], s)
	}
	return r
}
