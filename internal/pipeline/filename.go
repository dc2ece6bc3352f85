package pipeline

import "fmt"

// filenameFor returns the output name for a 0-based page index:
// a 1-based page index zero-padded to padWidth, the card number (advancing
// every two pages), and the side, which alternates front/back per page.
//
//	filenameFor(0, 2) == "01_card1_front.png"
//	filenameFor(1, 2) == "02_card1_back.png"
//	filenameFor(2, 2) == "03_card2_front.png"
func filenameFor(pageIndex, padWidth int) string {
	side := "front"
	if pageIndex%2 == 1 {
		side = "back"
	}
	return fmt.Sprintf("%0*d_card%d_%s.png", padWidth, pageIndex+1, pageIndex/2+1, side)
}
