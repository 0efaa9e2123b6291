package app

// Shutdown закрывает снимки и только затем отменяет воркеры. Ответы и ошибки
// отмены незавершённых запросов после этого отбрасываются.
func (s *Stores) Shutdown(stopWorkers func()) {
	s.Active.Close()
	s.History.Close()
	s.Nearby.Close()

	stopWorkers()
}
