package browser

// SetOpener reemplaza la función de apertura y reinicia el flag del proceso.
func SetOpener(fn func(string) error) (restore func()) {
	prev := opener
	opener = fn
	opened.Store(false)
	return func() {
		opener = prev
		opened.Store(false)
	}
}
