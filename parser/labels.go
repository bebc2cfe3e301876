package parser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// DefaultLabels are the classes of the walkway segmentation model, in model
// class index order
var DefaultLabels = []string{ClassWalkArea, ClassObstacle, ClassHuman}

// LoadLabels reads the labels used to train the Model from the given text file.
// It should contain one label per line.
func LoadLabels(file string) ([]string, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	var labels []string

	// read and trim each line, skipping blank lines
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		labels = append(labels, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return labels, nil
}
