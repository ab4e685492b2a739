// Package fastfile reads whole files sequentially as fast as the platform
// allows.
//
// A read starts with a Request:
//
//	r, err := fastfile.Read(path).WithSizeHint(n).Open()
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	for {
//		chunk, err := r.Next()
//		if err != nil {
//			return err
//		}
//		if len(chunk) == 0 {
//			break
//		}
//		consume(chunk)
//	}
//
// Open uses DefaultStrategy, which reads through the file descriptor with a
// page-aligned scratch buffer of at most MaxReadBufSize bytes and gives the
// kernel an access hint chosen by file size: none for files below one
// page, a read-ahead hint up to 10 MiB and a prefetch request for the whole
// file above that. DirectStrategy and MmapStrategy read without hints and
// from a memory mapping respectively.
//
// Errors are *Error values classified by Kind; use errors.Is and errors.As
// to inspect their causes.
package fastfile
