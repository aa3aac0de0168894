package http

import (
	"io/fs"
	"net/http"
)

// mediaFileSystem serves regular files only, so directories under the
// media root are never listed.
type mediaFileSystem struct {
	http.FileSystem
}

func (m mediaFileSystem) Open(name string) (http.File, error) {
	f, err := m.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		f.Close()
		return nil, fs.ErrNotExist
	}

	return f, nil
}

// mediaHandler serves files written by the local image backend.
func mediaHandler(root string) http.Handler {
	return http.StripPrefix("/media/", http.FileServer(mediaFileSystem{http.Dir(root)}))
}
