package cache

import (
	"reflect"
	"testing"
)

func TestHitIdempotence(t *testing.T) {
	c := New(4, 2)
	_, miss1 := c.Access(100)
	if !miss1 {
		t.Fatal("first access to sector 100 should miss")
	}
	_, miss2 := c.Access(100)
	if miss2 {
		t.Fatal("second access to sector 100 should hit")
	}
	buf1, _ := c.Access(100)
	buf2, _ := c.Access(100)
	if buf1 != buf2 {
		t.Errorf("repeated hits returned different buffers: %v, %v", buf1, buf2)
	}
}

func TestPureHitScenarioPromotesToRight(t *testing.T) {
	// One process with READ 100, READ 100, READ 100.
	c := New(4, 2)
	if _, miss := c.Access(100); !miss {
		t.Fatal("first access should miss")
	}
	if _, hit := c.Access(100); hit {
		t.Fatal("second access should hit")
	}
	if _, hit := c.Access(100); hit {
		t.Fatal("third access should hit")
	}

	if got := c.LeftSectors(); len(got) != 0 {
		t.Errorf("LeftSectors() = %v, want empty", got)
	}
	if want := []int{100}; !reflect.DeepEqual(c.RightSectors(), want) {
		t.Errorf("RightSectors() = %v, want %v", c.RightSectors(), want)
	}
}

func TestLeftToRightPromotionSequence(t *testing.T) {
	// total_buffers=4, max_right_segment=2; access sequence A B C A B.
	c := New(4, 2)
	const A, B, Cc = 1, 2, 3

	c.Access(A)
	c.Access(B)
	c.Access(Cc)
	c.Access(A)
	c.Access(B)

	if want := []int{B, A}; !reflect.DeepEqual(c.RightSectors(), want) {
		t.Errorf("RightSectors() = %v, want MRU-first %v", c.RightSectors(), want)
	}
	if want := []int{Cc}; !reflect.DeepEqual(c.LeftSectors(), want) {
		t.Errorf("LeftSectors() = %v, want %v", c.LeftSectors(), want)
	}
	if got := c.LeftLen() + c.RightLen(); got != 3 {
		t.Errorf("total occupied = %d, want 3", got)
	}
}

func TestMissEvictsLeftTailFirst(t *testing.T) {
	c := New(2, 1)
	c.Access(1) // L: [1]
	c.Access(2) // L: [2,1]  (both miss, no right segment activity)
	if _, miss := c.Access(3); !miss {
		t.Fatal("access to sector 3 should miss")
	}
	// sector 1 was the tail of L and should have been evicted.
	if _, miss := c.Access(1); !miss {
		t.Error("sector 1 should have been evicted")
	}
}

func TestMissEvictsFromRightWhenLeftEmpty(t *testing.T) {
	// total=2, max_right=2: fill both slots into R via promotion, then miss
	// with L empty must evict from R's tail — the documented fallback.
	c := New(2, 2)
	c.Access(1)
	c.Access(1) // promote to R
	c.Access(2)
	c.Access(2) // promote to R; R=[2,1], L=[]

	if got := c.LeftLen(); got != 0 {
		t.Fatalf("LeftLen() = %d, want 0", got)
	}
	if got := c.RightLen(); got != 2 {
		t.Fatalf("RightLen() = %d, want 2", got)
	}

	if _, miss := c.Access(3); !miss {
		t.Fatal("access to sector 3 should miss")
	}
	// sector 1 (R's tail) should have been evicted.
	if _, miss := c.Access(1); !miss {
		t.Error("sector 1 should have been evicted")
	}
}

func TestPushRightDemotesOnOverflow(t *testing.T) {
	c := New(4, 1)
	c.Access(1)
	c.Access(1) // R=[1]
	c.Access(2)
	c.Access(2) // R full (max=1): demotes 1 to L front, R=[2]

	if want := []int{2}; !reflect.DeepEqual(c.RightSectors(), want) {
		t.Errorf("RightSectors() = %v, want %v", c.RightSectors(), want)
	}
	if want := []int{1}; !reflect.DeepEqual(c.LeftSectors(), want) {
		t.Errorf("LeftSectors() = %v, want %v", c.LeftSectors(), want)
	}
}

func TestInvariantsHoldAcrossRandomAccess(t *testing.T) {
	c := New(5, 2)
	seq := []int{1, 2, 3, 1, 4, 5, 2, 6, 7, 1, 8, 9, 3, 3, 3}
	for _, s := range seq {
		c.Access(s)
		if c.RightLen() > 2 {
			t.Fatalf("after access(%d): RightLen() = %d, want <= 2", s, c.RightLen())
		}
		if total := c.LeftLen() + c.RightLen(); total > 5 {
			t.Fatalf("after access(%d): occupied = %d, want <= 5", s, total)
		}
	}
}
