package metadata

// WithRename replaces the function used to move the temporary record into place.
func (s *Store) WithRename(rename func(oldPath, newPath string) error) *Store {
	s.rename = rename
	return s
}
