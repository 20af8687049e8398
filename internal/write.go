package internal

import (
	"os"
)

// writeFileAtomic writes data atomically (write temp → rename) so a failed
// write never leaves a partial file at dest. The parent directory must
// already exist.
func writeFileAtomic(dest string, data []byte) error {
	tmp := dest + ".tmp"

	out, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if _, err := out.Write(data); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, dest)
}
