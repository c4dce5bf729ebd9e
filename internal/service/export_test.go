package service

// SetTokenGenerator replaces the share token source for tests
func SetTokenGenerator(s *ShareService, fn func(n int) (string, error)) {
	s.newToken = fn
}
