package scoped

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"people/pkg/platform/sentinel"
)

type (
	owner string
	key   string
)

type item struct {
	Owner owner
	Key   key
	Tag   string
}

type ScopedStoreSuite struct {
	suite.Suite
	store *Store[owner, key, item]
}

func (s *ScopedStoreSuite) SetupTest() {
	s.store = New[owner, key, item]()
}

func TestScopedStoreSuite(t *testing.T) {
	suite.Run(t, new(ScopedStoreSuite))
}

func (s *ScopedStoreSuite) put(o owner, k key, tag string) {
	s.Require().NoError(s.store.Insert(o, k, item{Owner: o, Key: k, Tag: tag}))
}

func (s *ScopedStoreSuite) TestInsertAndGet() {
	s.Run("returns stored record", func() {
		s.put("p1", "a1", "home")

		got, err := s.store.Get("p1", "a1")
		s.Require().NoError(err)
		s.Equal("home", got.Tag)
		s.True(s.store.Has("p1", "a1"))
	})

	s.Run("duplicate key within owner conflicts", func() {
		err := s.store.Insert("p1", "a1", item{Tag: "again"})
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("same key under another owner is independent", func() {
		s.put("p2", "a1", "other")

		got, err := s.store.Get("p2", "a1")
		s.Require().NoError(err)
		s.Equal("other", got.Tag)
	})

	s.Run("unknown owner or key is not found", func() {
		_, err := s.store.Get("nobody", "a1")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
		_, err = s.store.Get("p1", "missing")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
		s.False(s.store.Has("nobody", "a1"))
	})
}

func (s *ScopedStoreSuite) TestReplaceAndRemove() {
	s.put("p1", "a1", "first")
	s.put("p1", "a2", "second")

	s.Run("replace keeps position", func() {
		s.Require().NoError(s.store.Replace("p1", "a1", item{Owner: "p1", Key: "a1", Tag: "updated"}))

		list := s.store.List("p1")
		s.Require().Len(list, 2)
		s.Equal("updated", list[0].Tag)
		s.Equal("second", list[1].Tag)
	})

	s.Run("replace of missing record is not found", func() {
		s.ErrorIs(s.store.Replace("p1", "zz", item{}), sentinel.ErrNotFound)
		s.ErrorIs(s.store.Replace("nobody", "a1", item{}), sentinel.ErrNotFound)
	})

	s.Run("remove returns the stored record", func() {
		removed, err := s.store.Remove("p1", "a1")
		s.Require().NoError(err)
		s.Equal("updated", removed.Tag)
		s.False(s.store.Has("p1", "a1"))
		s.Len(s.store.List("p1"), 1)
	})

	s.Run("second remove is not found", func() {
		_, err := s.store.Remove("p1", "a1")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *ScopedStoreSuite) TestListing() {
	s.Run("unknown owner lists empty non-nil", func() {
		list := s.store.List("nobody")
		s.NotNil(list)
		s.Empty(list)
		s.NotNil(s.store.All())
	})

	s.Run("all groups by owner in arrival order", func() {
		s.put("p2", "x", "p2-x")
		s.put("p1", "y", "p1-y")
		s.put("p2", "z", "p2-z")

		var tags []string
		for _, it := range s.store.All() {
			tags = append(tags, it.Tag)
		}
		s.Equal([]string{"p2-x", "p2-z", "p1-y"}, tags)
	})

	s.Run("list returns a snapshot", func() {
		list := s.store.List("p2")
		list[0].Tag = "mutated"

		got, err := s.store.Get("p2", "x")
		s.Require().NoError(err)
		s.Equal("p2-x", got.Tag)
	})
}

func (s *ScopedStoreSuite) TestBulkRemoval() {
	s.put("p1", "a", "keep")
	s.put("p1", "b", "drop")
	s.put("p2", "c", "drop")
	s.put("p2", "d", "keep")

	s.Run("remove where matches across owners", func() {
		n := s.store.RemoveWhere(func(it item) bool { return it.Tag == "drop" })
		s.Equal(2, n)
		s.Len(s.store.All(), 2)
		s.False(s.store.Has("p1", "b"))
	})

	s.Run("drop reports count and forgets owner", func() {
		s.Equal(1, s.store.Drop("p1"))
		s.Empty(s.store.List("p1"))
		s.Equal(0, s.store.Drop("p1"))
	})

	s.Run("owner can be reused after drop", func() {
		s.put("p1", "a", "fresh")
		s.Len(s.store.List("p1"), 1)
	})
}

func (s *ScopedStoreSuite) TestWritesToDroppedBucketReportNotFound() {
	s.put("p1", "a", "before")
	b := s.store.lookup("p1")
	s.Require().NotNil(b)
	s.Require().Equal(1, s.store.Drop("p1"))

	err := b.replace("a", item{Owner: "p1", Key: "a", Tag: "after"})
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = b.remove("a")
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.False(s.store.Has("p1", "a"))
}

func (s *ScopedStoreSuite) TestConcurrentOwners() {
	const owners, perOwner = 8, 50
	var wg sync.WaitGroup
	for o := range owners {
		wg.Add(1)
		go func() {
			defer wg.Done()
			own := owner(fmt.Sprintf("p%d", o))
			for i := range perOwner {
				k := key(fmt.Sprintf("k%d", i))
				_ = s.store.Insert(own, k, item{Owner: own, Key: k})
				_ = s.store.List(own)
				_ = s.store.All()
			}
		}()
	}
	wg.Wait()

	s.Len(s.store.All(), owners*perOwner)
	for o := range owners {
		s.Len(s.store.List(owner(fmt.Sprintf("p%d", o))), perOwner)
	}
}
