package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordKeepsArrivalOrder(t *testing.T) {
	tr := NewTracker(10)
	tr.Record("aa:bb:cc:11:22:33", 40)
	tr.Record("aa:bb:cc:11:22:33", 55)
	tr.Record("aa:bb:cc:11:22:33", 70)

	assert.Equal(t, []int{40, 55, 70}, tr.Samples("aa:bb:cc:11:22:33"))
}

func TestRecordEvictsOldestBeyondCapacity(t *testing.T) {
	tr := NewTracker(3)
	for _, s := range []int{1, 2, 3, 4, 5} {
		tr.Record("aa:bb:cc:11:22:33", s)
	}

	assert.Equal(t, []int{3, 4, 5}, tr.Samples("aa:bb:cc:11:22:33"))
}

func TestLengthNeverExceedsCapacity(t *testing.T) {
	tr := NewTracker(10)
	for i := 0; i < 100; i++ {
		tr.Record("aa:bb:cc:11:22:33", i)
	}

	got := tr.Samples("aa:bb:cc:11:22:33")
	assert.Len(t, got, 10)
	assert.Equal(t, []int{90, 91, 92, 93, 94, 95, 96, 97, 98, 99}, got)
}

func TestAddressesAreIndependent(t *testing.T) {
	tr := NewTracker(2)
	tr.Record("aa:aa:aa:00:00:01", 10)
	tr.Record("bb:bb:bb:00:00:02", 90)

	assert.Equal(t, []int{10}, tr.Samples("aa:aa:aa:00:00:01"))
	assert.Equal(t, []int{90}, tr.Samples("bb:bb:bb:00:00:02"))
}

func TestSamplesForUnseenAddress(t *testing.T) {
	tr := NewTracker(5)
	assert.Nil(t, tr.Samples("aa:bb:cc:11:22:33"))
}

func TestSamplesReturnsCopy(t *testing.T) {
	tr := NewTracker(5)
	tr.Record("aa:bb:cc:11:22:33", 50)

	got := tr.Samples("aa:bb:cc:11:22:33")
	got[0] = 999
	assert.Equal(t, []int{50}, tr.Samples("aa:bb:cc:11:22:33"))
}

func TestNonPositiveCapacityUsesDefault(t *testing.T) {
	tr := NewTracker(0)
	assert.Equal(t, DefaultCapacity, tr.Capacity())
}
