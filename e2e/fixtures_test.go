//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

const testRecords = `[
  {"Name": "Pikachu", "Types": ["Electric"], "img": "http://img/pikachu.png", "MaxCP": "1000"},
  {"Name": "Pidgey", "Types": ["Normal", "Flying"], "img": "http://img/pidgey.png"},
  {"Name": "Charmander", "Types": ["Fire"], "img": "http://img/charmander.png", "MaxCP": "500"},
  {"Name": "Bulbasaur", "Types": ["Grass", "Poison"], "img": "http://img/bulbasaur.png", "MaxCP": "1071"}
]`

// CreateWorkspace creates the temporary directory used as $HOME for the app
func (tf *TUITestFramework) CreateWorkspace() (string, error) {
	dir, err := os.MkdirTemp("", "dexsearch-e2e-*")
	if err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = dir
	return dir, nil
}

// WriteRecords writes the record list the app searches and returns its path
func (tf *TUITestFramework) WriteRecords(content string) (string, error) {
	if tf.workspace == "" {
		if _, err := tf.CreateWorkspace(); err != nil {
			return "", err
		}
	}
	path := filepath.Join(tf.workspace, "records.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write records: %w", err)
	}
	return path, nil
}
