package usecase

import "time"

// nowFunc is swapped in tests to pin wall-clock time.
var nowFunc = time.Now
