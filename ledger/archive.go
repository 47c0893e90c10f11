package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

// ExportArchive writes an xz-compressed CSV backup of the log. The file
// is written to a temp path first and renamed into place so a failed
// export never leaves a truncated backup behind.
func ExportArchive(path string, txs []Transaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w, err := xz.NewWriter(f)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("xz writer: %w", err)
	}

	if err := ExportCSV(w, txs); err != nil {
		_ = w.Close()
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}

// ImportArchive reads a backup previously written by ExportArchive.
func ImportArchive(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("xz reader: %w", err)
	}

	return ImportCSV(r)
}
