package lib

import (
	"bytes"
	"encoding/gob"
	"os"
	"path/filepath"
)

const appName = "edabuddy"

func Exists(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	} else if os.IsNotExist(err) {
		return false
	}

	return true
}

// return an encoded object as bytes
func Marshal(v interface{}) ([]byte, error) {
	b := new(bytes.Buffer)
	err := gob.NewEncoder(b).Encode(v)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// return a decoded object from bytes
func Unmarshal(data []byte, v interface{}) error {
	b := bytes.NewBuffer(data)
	return gob.NewDecoder(b).Decode(v)
}

// DefaultRoot is the directory holding the library database and index.
func DefaultRoot() string {
	if base := userDataDir(); base != "" {
		return filepath.Join(base, appName)
	}

	return "." + appName
}
