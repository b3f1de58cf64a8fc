package mark_test

import (
	"fmt"

	"github.com/yyyoichi/zerowidth"
	"github.com/yyyoichi/zerowidth/mark"
)

// ExampleHide demonstrates how to hide bytes in a text and reveal them back.
func ExampleHide() {
	data := []byte{0x48, 0x69} // "Hi"
	text, err := mark.Hide("Hello World", data, 5)
	if err != nil {
		fmt.Printf("Error hiding payload: %v\n", err)
		return
	}
	fmt.Println(zerowidth.Strip(text))

	decoded, err := mark.Reveal(text)
	if err != nil {
		fmt.Printf("Error revealing payload: %v\n", err)
		return
	}
	fmt.Printf("%s\n", decoded)
	// Output:
	// Hello World
	// Hi
}

// ExampleGroups demonstrates the stream size with and without error correction.
func ExampleGroups() {
	fmt.Printf("without ECC: %d groups\n", mark.Groups(5, mark.WithoutECC()))
	fmt.Printf("with Golay:  %d groups\n", mark.Groups(5, mark.WithGolay(mark.DefaultShuffleSeed)))
	// Output:
	// without ECC: 6 groups
	// with Golay:  13 groups
}
