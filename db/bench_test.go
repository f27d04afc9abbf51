package db_test

import (
	"testing"

	"github.com/Dullaz/Raphtory/db"
)

func BenchmarkAddVertex(b *testing.B) {
	g := db.New(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddVertex(uint64(i%10000), int64(i), nil)
	}
}

func BenchmarkAddEdge(b *testing.B) {
	g := db.New(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(uint64(i%1000), uint64((i*7)%1000), int64(i), nil)
	}
}

func BenchmarkWindowedDegree(b *testing.B) {
	g := db.New(4)
	for i := 0; i < 50000; i++ {
		_ = g.AddEdge(uint64(i%100), uint64((i*13)%100), int64(i), nil)
	}
	v, err := g.View().Vertex(1)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Window(int64(i%40000), int64(i%40000+5000)).Degree()
	}
}

func BenchmarkCountEdgesWindowed(b *testing.B) {
	g := db.New(4)
	for i := 0; i < 50000; i++ {
		_ = g.AddEdge(uint64(i%200), uint64((i*13)%200), int64(i), nil)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Window(1000, 2000).CountEdges()
	}
}
