// Консольная клавиатура над голым ядром: построчно читает жесты из stdin
// (через пробел), применяет их по одному и печатает дисплей. Никакой
// инфраструктуры — тот самый «тонкий адаптер» вокруг движка.
//
// Пример:
//
//	> 1 2 + 3 =
//	15
//	> 5 0 %
//	0.5
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"padcalc/internal/engine"
)

func main() {
	e := engine.New()
	fmt.Println("padcalc repl — клавиши: 0-9 . + - * / = % +/- CE AC (пустая строка — выход)")
	fmt.Printf("> ")

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		for _, key := range strings.Fields(line) {
			if !engine.Recognized(key) {
				fmt.Printf("? %s\n", key)
				continue
			}
			e.Press(key)
		}
		fmt.Println(e.Display())
		fmt.Printf("> ")
	}
}
