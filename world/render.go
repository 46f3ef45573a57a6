package world

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ezrec/isolang/coord"
)

const (
	ansiReset  = "\x1b[0m"
	ansiTitle  = "\x1b[95m\x1b[1m"
	ansiBounds = "\x1b[94m"
	ansiOrigin = "\x1b[91m\x1b[1m"
	ansiHead   = "\x1b[92m\x1b[1m"
	ansiBoth   = "\x1b[93m\x1b[1m"
)

// Render draws the populated part of the grid, with the origin and head
// highlighted. Rows run top to bottom; neighbouring nodes of a row are one
// column apart, and each row is offset by half a node from the next.
func (w *World[C]) Render(out io.Writer) (err error) {
	bw := bufio.NewWriter(out)

	var minX, maxX, minY, maxY int
	var maxValue uint32
	include := func(at coord.Coord, value uint32) {
		x, y := at.Absolute()
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
		maxValue = max(maxValue, value)
	}

	include(coord.ZERO, w.Peek(coord.ZERO).Uint32())
	include(w.Head, w.Peek(w.Head).Uint32())
	for at, value := range w.Cells() {
		include(at, value.Uint32())
	}

	width := len(strconv.FormatUint(uint64(maxValue), 10))

	fmt.Fprintf(bw, "%vWORLD%v\n", ansiTitle, ansiReset)
	for y := maxY; y >= minY; y-- {
		bw.WriteString("| ")
		for x := minX; x <= maxX; x++ {
			if (x+y)&1 != 0 {
				fmt.Fprintf(bw, "%*s", width, "")
				continue
			}
			at := coord.FromAbsolute(x, y)
			switch {
			case at == coord.ZERO && at == w.Head:
				bw.WriteString(ansiBoth)
			case at == coord.ZERO:
				bw.WriteString(ansiOrigin)
			case at == w.Head:
				bw.WriteString(ansiHead)
			}
			fmt.Fprintf(bw, "%*d%v", width, w.Peek(at).Uint32(), ansiReset)
		}
		bw.WriteString("\n")
	}
	fmt.Fprintf(bw, "%vBL%v%v", ansiBounds, coord.FromAbsolute(minX, minY+((minX+minY)&1)), ansiReset)
	fmt.Fprintf(bw, " | %vORIGIN%v%v", ansiOrigin, coord.ZERO, ansiReset)
	fmt.Fprintf(bw, " | %vHEAD%v%v\n", ansiHead, w.Head, ansiReset)

	return bw.Flush()
}
