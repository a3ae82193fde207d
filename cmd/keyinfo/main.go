package main

import (
	"fmt"

	"github.com/xyproto/sendkeys"
)

func main() {
	escCount := 0
	tty, err := sendkeys.NewTTY("")
	if err != nil {
		panic(err)
	}
	defer tty.Close()
	fmt.Print("Press keys to see how they are sent, ESC twice to exit\r\n")
	for escCount < 2 {
		code, ok, err := tty.ReadKey()
		if err != nil {
			fmt.Printf("error: %v\r\n", err)
			return
		}
		if !ok {
			continue
		}
		key := sendkeys.Translate(code)
		if key.Special {
			fmt.Printf("%d\tkeyevent %d\r\n", code, key.Value)
		} else if text := sendkeys.EscapeText([]int{code}); text != "" {
			fmt.Printf("%d\ttext %s\r\n", code, text)
		} else {
			fmt.Printf("%d\tdropped\r\n", code)
		}
		if code == sendkeys.KeyEscape {
			if escCount == 0 {
				fmt.Print("Press ESC again to exit\r\n")
			} else {
				fmt.Print("bye!\r\n")
			}
			escCount++
		} else {
			escCount = 0
		}
	}
}
