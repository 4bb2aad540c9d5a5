package selector

import "fmt"

// Option is a single dropdown entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var states = []Option{
	{Value: "AP", Label: "Andhra Pradesh"},
	{Value: "TS", Label: "Telangana"},
	{Value: "TN", Label: "Tamil Nadu"},
}

var districts = map[string][]string{
	"AP": {"Krishna", "Guntur"},
	"TS": {"Hyderabad", "Warangal"},
	"TN": {"Chennai", "Coimbatore"},
}

const childrenPerLevel = 2

func States() []Option {
	out := make([]Option, len(states))
	copy(out, states)
	return out
}

// Districts returns the districts of `state`, an unknown state has none.
func Districts(state string) []Option {
	names := districts[state]
	out := make([]Option, len(names))
	for i, name := range names {
		out[i] = Option{Value: name, Label: name}
	}
	return out
}

// Complexes are the same for every district, only the label mentions it.
func Complexes(district string) []Option {
	out := make([]Option, childrenPerLevel)
	for i := range out {
		out[i] = Option{
			Value: fmt.Sprintf("Complex %d", i+1),
			Label: fmt.Sprintf("%s - Court Complex %d", district, i+1),
		}
	}
	return out
}

func Courts(complexName string) []Option {
	out := make([]Option, childrenPerLevel)
	for i := range out {
		out[i] = Option{
			Value: fmt.Sprintf("Court %d", i+1),
			Label: fmt.Sprintf("%s - Court %d", complexName, i+1),
		}
	}
	return out
}
