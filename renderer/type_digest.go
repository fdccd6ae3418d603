package renderer

import (
	"strings"

	"github.com/sonpb/advisor"
)

// Digest is the view of the consolidated one-page summary.
type Digest struct {
	AsOf string `json:"asOf"`

	Name        string        `json:"name"`
	Age         int           `json:"age"`
	Occupation  string        `json:"occupation"`
	TotalAssets advisor.Money `json:"totalAssets"`
	NetAssets   advisor.Money `json:"netAssets"`

	Goals []GoalDetail `json:"goals,omitempty"`

	// MainAssets is a comma-joined highlight of the leading asset names.
	MainAssets string `json:"mainAssets,omitempty"`
}

// digestAssetCount is how many asset names the highlight line quotes.
const digestAssetCount = 3

// NewDigest derives the consolidated summary view.
func NewDigest(p *advisor.ClientProfile, goals []advisor.Goal, alloc advisor.Allocation) *Digest {
	name := p.Identity.Name
	if name == "" {
		name = "The client"
	}

	d := &Digest{
		AsOf:        Now().Format("2006-01-02 15:04"),
		Name:        name,
		Age:         p.Identity.Age,
		Occupation:  p.Identity.Occupation,
		TotalAssets: p.Balance.TotalAssets,
		NetAssets:   p.Balance.NetAssets,
	}

	for i, g := range goals {
		d.Goals = append(d.Goals, GoalDetail{
			Index:    i + 1,
			Name:     g.Name,
			Years:    g.Years,
			Target:   g.Target,
			Priority: g.Priority,
		})
	}

	names := alloc.AssetNames
	if len(names) > digestAssetCount {
		names = names[:digestAssetCount]
	}
	d.MainAssets = strings.Join(names, ", ")

	return d
}
