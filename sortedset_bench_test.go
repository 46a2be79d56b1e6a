package sortedset

import "testing"

func Benchmark_Add(b *testing.B) {
	s, err := New(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Add(IntItem(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	size, _ := s.Size()
	if size != b.N {
		b.Errorf("expected %d, got %d", b.N, size)
	}
}

func Benchmark_Add_TryAcquire(b *testing.B) {
	s, err := New(Config{LockPolicy: TryAcquire})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Add(IntItem(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_At(b *testing.B) {
	s, err := New(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 100000; i++ {
		s.Add(IntItem(int64(i)))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.At(i % 100000); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_FindIndex(b *testing.B) {
	s, err := New(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 100000; i++ {
		s.Add(IntItem(int64(i)))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.FindIndex(IntItem(int64(i % 100000))); err != nil {
			b.Fatal(err)
		}
	}
}
