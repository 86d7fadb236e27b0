package service

// PosterServiceWrapper defines middleware composition for PosterService.
// Implementations wrap an existing PosterService to add behavior such as
// validating or access checks.
type PosterServiceWrapper interface {
	Wrap(PosterService) PosterService // returns a decorated PosterService applying additional behavior
}
