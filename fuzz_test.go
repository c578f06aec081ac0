package handleset

import (
	"testing"
)

// FuzzTable_AgainstMapOracle replays short chains of insert/erase/find
// operations against both a Table and a reference map[int]struct{}, and
// requires the two to always agree. Shaped after thepudds-swisstable's
// operation-chain fuzzing (autofuzzchain_test.go, vmap_test.go), rewritten
// against the stdlib native fuzzing API instead of an external generator.
func FuzzTable_AgainstMapOracle(f *testing.F) {
	f.Add([]byte{1, 5, 2, 5, 3, 9, 0, 5})
	f.Add([]byte{0, 1, 0, 1, 0, 1, 2, 200})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, ops []byte) {
		s, err := New[int](testIntHasher, testIntEquals)
		if err != nil {
			t.Fatal(err)
		}
		model := map[int]struct{}{}

		for i := 0; i+1 < len(ops); i += 2 {
			op := ops[i] % 3
			key := int(ops[i+1])

			switch op {
			case 0:
				s.Insert(key)
				model[key] = struct{}{}
			case 1:
				_, wantOK := model[key]
				_, gotOK := s.Erase(key)
				if gotOK != wantOK {
					t.Fatalf("Erase(%d) = %v, want %v", key, gotOK, wantOK)
				}
				delete(model, key)
			case 2:
				_, wantOK := model[key]
				_, gotOK := s.Find(key)
				if gotOK != wantOK {
					t.Fatalf("Find(%d) = %v, want %v", key, gotOK, wantOK)
				}
			}
		}

		if s.Count() != len(model) {
			t.Fatalf("Count() = %d, want %d", s.Count(), len(model))
		}
		for k := range model {
			if _, ok := s.Find(k); !ok {
				t.Fatalf("lost key %d that the model still has", k)
			}
		}
	})
}
