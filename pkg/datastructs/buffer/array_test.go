package buffer

import (
	"errors"
	"reflect"
	"testing"
)

// =============================================================================
// Method: NewArray()
// =============================================================================

func TestNewArray(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantCap  int
	}{
		{"positive", 16, 16},
		{"zero", 0, 0},
		{"negative_clamped", -4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArray[int](tt.capacity)
			if a.Cap() != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", a.Cap(), tt.wantCap)
			}
			if a.Len() != 0 {
				t.Errorf("Len() = %d, want 0", a.Len())
			}
			if a.Growths() != 0 {
				t.Errorf("Growths() = %d, want 0", a.Growths())
			}
		})
	}
}

// =============================================================================
// Method: Append() / Grow()
// =============================================================================

func TestAppend_ReturnsSequentialIndices(t *testing.T) {
	a := NewArray[string](2)
	for i, v := range []string{"a", "b", "c", "d", "e"} {
		if got := a.Append(v); got != i {
			t.Fatalf("Append(%q) = %d, want %d", v, got, i)
		}
	}
	if a.Len() != 5 {
		t.Errorf("Len() = %d, want 5", a.Len())
	}
}

func TestAppend_DoublingGrowth(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int
		appends     int
		wantCap     int
		wantGrowths int
	}{
		{"fits", 4, 4, 4, 0},
		{"one_growth", 4, 5, 8, 1},
		{"two_growths", 4, 9, 16, 2},
		{"from_zero", 0, 1, 1, 1},
		{"from_zero_many", 0, 5, 8, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArray[int](tt.capacity)
			for i := 0; i < tt.appends; i++ {
				a.Append(i)
			}
			if a.Cap() != tt.wantCap {
				t.Errorf("Cap() = %d, want %d", a.Cap(), tt.wantCap)
			}
			if a.Growths() != tt.wantGrowths {
				t.Errorf("Growths() = %d, want %d", a.Growths(), tt.wantGrowths)
			}
		})
	}
}

func TestGrow_PreservesContents(t *testing.T) {
	a := NewArray[int](1)
	for i := 0; i < 1000; i++ {
		a.Append(i * 3)
	}
	for i := 0; i < 1000; i++ {
		if got := a.At(i); got != i*3 {
			t.Fatalf("At(%d) = %d, want %d", i, got, i*3)
		}
	}
}

func TestGrow_LargeRequest(t *testing.T) {
	a := NewArray[int](2)
	a.Grow(10)
	if a.Cap() != 16 {
		t.Errorf("Cap() = %d, want 16", a.Cap())
	}
	if a.Growths() != 1 {
		t.Errorf("Growths() = %d, want 1", a.Growths())
	}
	if a.Len() != 0 {
		t.Errorf("Grow should not change Len, got %d", a.Len())
	}
}

// =============================================================================
// Method: At() / Last()
// =============================================================================

func TestAt_OutOfRangePanics(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"at_len", 2},
		{"within_cap_beyond_len", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArray[int](8)
			a.Append(1)
			a.Append(2)
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d) should panic", tt.index)
				}
			}()
			a.At(tt.index)
		})
	}
}

func TestLast(t *testing.T) {
	a := NewArray[int](4)
	a.Append(7)
	a.Append(9)
	if got := a.Last(); got != 9 {
		t.Errorf("Last() = %d, want 9", got)
	}
}

// =============================================================================
// Method: Range() / Iterate()
// =============================================================================

func TestRange(t *testing.T) {
	a := NewArray[int](4)
	for i := 1; i <= 5; i++ {
		a.Append(i)
	}

	tests := []struct {
		name     string
		from, to int
		want     []int
	}{
		{"full", 0, 5, []int{1, 2, 3, 4, 5}},
		{"middle", 1, 3, []int{2, 3}},
		{"empty", 2, 2, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Range(tt.from, tt.to)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Range(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestRange_ReturnsCopy(t *testing.T) {
	a := NewArray[int](4)
	a.Append(1)
	got := a.Range(0, 1)
	got[0] = 100
	if a.At(0) != 1 {
		t.Error("Range must not alias the backing storage")
	}
}

func TestRange_InvalidPanics(t *testing.T) {
	a := NewArray[int](4)
	a.Append(1)
	defer func() {
		if recover() == nil {
			t.Error("Range beyond Len should panic")
		}
	}()
	a.Range(0, 2)
}

func TestIterate(t *testing.T) {
	a := NewArray[int](4)
	for i := 0; i < 6; i++ {
		a.Append(i * 10)
	}

	var idx, vals []int
	err := a.Iterate(2, 5, func(i int, v int) error {
		idx = append(idx, i)
		vals = append(vals, v)
		return nil
	})
	if err != nil {
		t.Fatalf("Iterate returned %v", err)
	}
	if !reflect.DeepEqual(idx, []int{2, 3, 4}) {
		t.Errorf("indices = %v", idx)
	}
	if !reflect.DeepEqual(vals, []int{20, 30, 40}) {
		t.Errorf("values = %v", vals)
	}
}

func TestIterate_StopsOnError(t *testing.T) {
	a := NewArray[int](4)
	for i := 0; i < 4; i++ {
		a.Append(i)
	}
	stop := errors.New("stop")
	calls := 0
	err := a.Iterate(0, 4, func(i int, v int) error {
		calls++
		if i == 1 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("err = %v, want %v", err, stop)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

// =============================================================================
// Method: Clone()
// =============================================================================

func TestClone_Independent(t *testing.T) {
	a := NewArray[int](2)
	a.Append(1)
	a.Append(2)

	c := a.Clone()
	c.Append(3)
	a.Append(4)

	if !reflect.DeepEqual(a.Range(0, a.Len()), []int{1, 2, 4}) {
		t.Errorf("original = %v", a.Range(0, a.Len()))
	}
	if !reflect.DeepEqual(c.Range(0, c.Len()), []int{1, 2, 3}) {
		t.Errorf("clone = %v", c.Range(0, c.Len()))
	}
}

func TestClone_KeepsCapacity(t *testing.T) {
	a := NewArray[int](8)
	a.Append(1)
	c := a.Clone()
	if c.Cap() != 8 {
		t.Errorf("Cap() = %d, want 8", c.Cap())
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
