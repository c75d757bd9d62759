// Package disclosure projects genomes into progressively richer views.
// The surface tier is safe to show anyone, the gateway tier adds symbolic
// correspondences, and the depths tier exposes the full record.
package disclosure

import (
	"github.com/bomac1193/ophelian-os-sub001/domain/core/entities"
	"github.com/bomac1193/ophelian-os-sub001/domain/correspondence"
)

// Tier names a disclosure level.
type Tier string

const (
	TierSurface Tier = "surface"
	TierGateway Tier = "gateway"
	TierDepths  Tier = "depths"
)

// SurfaceView is the minimal public projection of a genome.
type SurfaceView struct {
	Glyph string `json:"glyph"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Correspondences carries the symbolic attributes of the head orisha.
type Correspondences struct {
	Element string   `json:"element"`
	Day     string   `json:"day"`
	Number  int      `json:"number"`
	Colors  []string `json:"colors"`
}

// GatewayView extends the surface with hints and correspondences.
type GatewayView struct {
	SurfaceView
	Hint            string          `json:"hint"`
	Correspondences Correspondences `json:"correspondences"`
	Insight         string          `json:"insight"`
}

// PathContext describes one Tree path touching the genome's sephira.
type PathContext struct {
	Number int    `json:"number"`
	From   string `json:"from"`
	To     string `json:"to"`
	Letter string `json:"letter"`
	Title  string `json:"title"`
}

// DepthsView is the full esoteric record.
type DepthsView struct {
	GatewayView
	Name                string                       `json:"name"`
	OrishaConfiguration entities.OrishaConfiguration `json:"orishaConfiguration"`
	KabbalisticPosition entities.KabbalisticPosition `json:"kabbalisticPosition"`
	PsychologicalState  entities.PsychologicalState  `json:"psychologicalState"`
	NarrativeIdentity   entities.NarrativeIdentity   `json:"narrativeIdentity"`
	SephiraTitle        string                       `json:"sephiraTitle"`
	SephiraMeaning      string                       `json:"sephiraMeaning"`
	TreePaths           []PathContext                `json:"treePaths"`
}

// Projector builds disclosure views. Views are computed fresh from the
// correspondence tables on every call so that table revisions show through
// without re-generating stored genomes.
type Projector struct{}

// NewProjector creates a projector.
func NewProjector() *Projector {
	return &Projector{}
}

// Surface projects the public tier.
func (p *Projector) Surface(g *entities.Genome) (SurfaceView, error) {
	orec, err := correspondence.GetOrisha(g.OrishaConfiguration().HeadOrisha)
	if err != nil {
		return SurfaceView{}, err
	}
	return SurfaceView{
		Glyph: orec.Glyph,
		Code:  orec.Code,
		Label: orec.Label,
	}, nil
}

// Gateway projects the intermediate tier.
func (p *Projector) Gateway(g *entities.Genome) (GatewayView, error) {
	surface, err := p.Surface(g)
	if err != nil {
		return GatewayView{}, err
	}
	orec, err := correspondence.GetOrisha(g.OrishaConfiguration().HeadOrisha)
	if err != nil {
		return GatewayView{}, err
	}
	return GatewayView{
		SurfaceView: surface,
		Hint:        orec.Hint,
		Correspondences: Correspondences{
			Element: orec.Element,
			Day:     orec.Day,
			Number:  orec.Number,
			Colors:  append([]string(nil), orec.Colors...),
		},
		Insight: orec.Insight,
	}, nil
}

// Depths projects the full tier, including Tree path context for the
// genome's primary sephira.
func (p *Projector) Depths(g *entities.Genome) (DepthsView, error) {
	gateway, err := p.Gateway(g)
	if err != nil {
		return DepthsView{}, err
	}
	position := g.KabbalisticPosition()
	srec, err := correspondence.GetSephira(position.PrimarySephira)
	if err != nil {
		return DepthsView{}, err
	}
	paths := correspondence.PathsTouching(position.PrimarySephira)
	ctx := make([]PathContext, 0, len(paths))
	for _, path := range paths {
		ctx = append(ctx, PathContext{
			Number: path.Number,
			From:   string(path.From),
			To:     string(path.To),
			Letter: path.Letter,
			Title:  path.Title,
		})
	}
	return DepthsView{
		GatewayView:         gateway,
		Name:                g.Name(),
		OrishaConfiguration: g.OrishaConfiguration(),
		KabbalisticPosition: position,
		PsychologicalState:  g.PsychologicalState(),
		NarrativeIdentity:   g.NarrativeIdentity(),
		SephiraTitle:        srec.Title,
		SephiraMeaning:      srec.Meaning,
		TreePaths:           ctx,
	}, nil
}
