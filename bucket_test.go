package sortedset

import "testing"

func TestBucketInsertKeepsStrictOrder(t *testing.T) {
	b := newBucket(10)
	for _, v := range []int64{5, 1, 3, 2, 4} {
		if _, inserted := b.insert(IntItem(v)); !inserted {
			t.Fatalf("insert(%d) reported duplicate", v)
		}
	}
	want := []int64{1, 2, 3, 4, 5}
	for i, w := range want {
		got, _ := b.at(i).Int()
		if got != w {
			t.Fatalf("at(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestBucketInsertDuplicateIsNoop(t *testing.T) {
	b := newBucket(10)
	b.insert(IntItem(1))
	b.insert(IntItem(2))
	localBefore := b.len()
	idx, inserted := b.insert(IntItem(1))
	if inserted {
		t.Fatalf("duplicate insert reported inserted")
	}
	if idx != 0 {
		t.Fatalf("duplicate insert local index = %d, want 0", idx)
	}
	if b.len() != localBefore {
		t.Fatalf("duplicate insert changed length: %d -> %d", localBefore, b.len())
	}
}

func TestBucketRemove(t *testing.T) {
	b := newBucket(10)
	for _, v := range []int64{1, 2, 3} {
		b.insert(IntItem(v))
	}
	idx, removed := b.remove(IntItem(2))
	if !removed || idx != 1 {
		t.Fatalf("remove(2) = (%d, %v), want (1, true)", idx, removed)
	}
	if b.len() != 2 {
		t.Fatalf("len after remove = %d, want 2", b.len())
	}
	if _, removed := b.remove(IntItem(2)); removed {
		t.Fatalf("removing an absent item reported removed")
	}
}

func TestBucketOverflowAndSplit(t *testing.T) {
	b := newBucket(3)
	for _, v := range []int64{1, 2, 3, 4} {
		b.insert(IntItem(v))
	}
	if !b.overflowed() {
		t.Fatalf("bucket with 4 items and capacity 3 did not report overflow")
	}
	nb := b.split()
	if b.len() > 3 || nb.len() > 3 {
		t.Fatalf("split halves exceed capacity: %d, %d", b.len(), nb.len())
	}
	if b.len()+nb.len() != 4 {
		t.Fatalf("split lost items: %d + %d != 4", b.len(), nb.len())
	}
	last, _ := b.last()
	first := nb.at(0)
	if compareItems(last, first) >= 0 {
		t.Fatalf("split halves are not contiguous in sorted order")
	}
}
