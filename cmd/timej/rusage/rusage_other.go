//go:build !unix

package rusage

type Getrusage struct {
	Platform Platform
}

func NewGetrusage() *Getrusage {
	return &Getrusage{Platform: CurrentPlatform()}
}

func (g *Getrusage) QueryChildrenUsage() (*ResourceUsage, error) {
	return nil, ErrUnsupported
}
