package dockerfile

// An image a stage can be based on.
type Base interface {
	Image() string
}

// A base given by its full image reference.
type Image string

func (i Image) Image() string {
	return string(i)
}

// The OpenJDK image at the given version.
type OpenJDK string

func (v OpenJDK) Image() string {
	return "openjdk:" + string(v)
}

// The Amazon Corretto image at the given version.
type AmazonCorretto string

func (v AmazonCorretto) Image() string {
	return "amazoncorretto:" + string(v)
}

// Adds a stage based on b. Shorthand for AddStage(b.Image(), fn).
func (f *File) From(b Base, fn func(s *Stage)) *Stage {
	return f.AddStage(b.Image(), fn)
}
