package service

// idGenerator is satisfied by utils.UUIDGenerator.
type idGenerator interface {
	Generate() string
}

type uuidFilenameGenerator struct {
	ids idGenerator
}

// NewFilenameGenerator returns a [FilenameGenerator] producing names of the
// form "{id}-{originalName}". The original name is kept as sent; ids must
// produce random values so that equal original names never collide.
func NewFilenameGenerator(ids idGenerator) FilenameGenerator {
	return &uuidFilenameGenerator{ids: ids}
}

func (g *uuidFilenameGenerator) Generate(originalName string) string {
	return g.ids.Generate() + "-" + originalName
}
