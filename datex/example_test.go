package datex_test

import (
	"fmt"
	"time"

	"github.com/shellkit/go-shell-utils/datex"
)

func ExampleAddDays() {
	t := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)
	fmt.Println(datex.FormatDate(datex.AddDays(t, 1)))
	// Output: 2024-02-29
}

func ExampleDaysBetween() {
	a, _ := datex.ParseDate("2024-03-01")
	b, _ := datex.ParseDate("2024-03-31")
	fmt.Println(datex.DaysBetween(a, b))
	// Output: 30
}

func ExampleDaysInMonth() {
	fmt.Println(datex.DaysInMonth(2024, time.February))
	// Output: 29
}
