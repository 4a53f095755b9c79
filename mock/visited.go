package mock

import "github.com/mrTr1cky/spyder"

var _ spyder.VisitedSet = (*VisitedSet)(nil)

// VisitedSet is a mock implementation of spyder.VisitedSet.
type VisitedSet struct {
	ClaimFn      func(url string) bool
	ResolveFn    func(url string, ok bool)
	SeenFn       func(url string) bool
	DiscoveredFn func() []string
	LenFn        func() int
}

func (v *VisitedSet) Claim(url string) bool {
	return v.ClaimFn(url)
}

func (v *VisitedSet) Resolve(url string, ok bool) {
	v.ResolveFn(url, ok)
}

func (v *VisitedSet) Seen(url string) bool {
	return v.SeenFn(url)
}

func (v *VisitedSet) Discovered() []string {
	return v.DiscoveredFn()
}

func (v *VisitedSet) Len() int {
	return v.LenFn()
}
