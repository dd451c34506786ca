package rename_test

import "time"

// testNow is the fixed clock used by format tests.
var testNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
