// Command export writes the test case images as PNG files, together with a
// JSON index.  Run from the epicycle module root directory.
package main

import (
	"encoding/json"
	"image/png"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/unixpickle/essentials"

	"seehuhn.de/go/epicycle/testcases"
)

const outDir = "testdata/cases"

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	var all []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc := toJSON(category, tc)
			out.TestCases = append(out.TestCases, jtc)
			all = append(all, tc)
		}
	}

	essentials.Must(os.MkdirAll(outDir, 0755))
	essentials.ConcurrentMap(0, len(all), func(i int) {
		writePNG(filepath.Join(outDir, out.TestCases[i].File), all[i])
	})

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	essentials.Must(err)
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	essentials.Must(enc.Encode(out))
	log.Printf("wrote %d test cases to %s", len(all), outDir)
}

type jsonTestCase struct {
	Name   string `json:"name"`
	File   string `json:"file"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Light  bool   `json:"light,omitempty"`
	Want   string `json:"want,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	name := category + "_" + tc.Name
	jtc := jsonTestCase{
		Name:   name,
		File:   name + ".png",
		Width:  tc.Width,
		Height: tc.Height,
		Light:  tc.Light,
	}
	if tc.Want != nil {
		jtc.Want = tc.Want.Error()
	}
	return jtc
}

func writePNG(fname string, tc testcases.TestCase) {
	f, err := os.Create(fname)
	essentials.Must(err)
	defer f.Close()
	essentials.Must(png.Encode(f, tc.Image()))
}
