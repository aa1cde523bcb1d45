package recordstore

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// RecordSize is the encoded size of one record: 15 little-endian float64s.
var RecordSize = binary.Size(Record{})

// FileStore keeps records back to back in a flat binary file. A missing file
// holds no records and a short trailing record marks the end of valid data.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) List() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) Count() (int, error) {
	records, err := s.List()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func (s *FileStore) Get(index int) (Record, error) {
	records, err := s.List()
	if err != nil {
		return Record{}, err
	}
	return getFrom(records, index)
}

func (s *FileStore) Append(r Record) error {
	if err := r.check(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	if len(records) >= MaxRecords {
		return ErrFull
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	// Drop any partial trailing record so the new one stays aligned.
	offset := int64(len(records) * RecordSize)
	if err := f.Truncate(offset); err != nil {
		return err
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	if err := binary.Write(f, binary.LittleEndian, r); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return f.Sync()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, err
	}
	defer f.Close()

	records := make([]Record, 0, MaxRecords)
	buf := make([]byte, RecordSize)
	for len(records) < MaxRecords {
		if _, err := io.ReadFull(f, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return nil, err
		}
		var r Record
		if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &r); err != nil {
			return nil, fmt.Errorf("decode record %d: %w", len(records), err)
		}
		records = append(records, r)
	}
	return records, nil
}
