package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrowAndShrink(t *testing.T) {
	out := EnsureLen([]int{1, 2}, 5)
	if len(out) != 5 || cap(out) < 5 {
		t.Fatalf("len = %d cap = %d, want 5", len(out), cap(out))
	}

	if got := EnsureLen(out, -1); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]complex128, 2)

	n := CopyInto(dst, []complex128{1, 2i, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	if dst[0] != 1 || dst[1] != 2i {
		t.Fatalf("unexpected dst: %#v", dst)
	}
}

func TestZeroAndFill(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}

	Fill(buf, 7)
	for i, v := range buf {
		if v != 7 {
			t.Fatalf("buf[%d] = %v, want 7", i, v)
		}
	}
}
