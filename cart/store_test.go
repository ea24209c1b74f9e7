package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCreatesSession(t *testing.T) {
	s := NewMemoryStore()
	s.Update("sid", func(c *Cart) {
		c.SetTableNumber("12")
	})

	c, ok := s.Get("sid")
	require.True(t, ok)
	assert.Equal(t, "12", c.TableNumber)

	_, ok = s.Get("other")
	assert.False(t, ok)
}

func TestConcurrentUpdatesLoseNothing(t *testing.T) {
	s := NewMemoryStore()
	const perWorker = 500

	var wg sync.WaitGroup
	for w := 0; w < 2; w++ {
		wg.Add(1)
		go func(offset uint) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := offset + uint(i)
				s.Update("sid", func(c *Cart) {
					c.AddMeal(MealLine{ItemID: id, Name: "Dish", UnitPrice: price(10), Quantity: 1}, true)
				})
			}
		}(uint(w * perWorker))
	}
	wg.Wait()

	c, ok := s.Get("sid")
	require.True(t, ok)
	assert.Len(t, c.Lines, 2*perWorker, "every distinct add must land")
}

func TestConcurrentIncrementsAllCount(t *testing.T) {
	s := NewMemoryStore()
	s.Update("sid", func(c *Cart) {
		c.AddMeal(MealLine{ItemID: 1, Name: "Dish", UnitPrice: price(10), Quantity: 1}, true)
	})

	const taps = 200
	var wg sync.WaitGroup
	for w := 0; w < 2; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < taps; i++ {
				s.Update("sid", func(c *Cart) { c.Increment(0) })
			}
		}()
	}
	wg.Wait()

	c, _ := s.Get("sid")
	assert.Equal(t, 1+2*taps, c.Lines[0].Quantity)
}

func TestGetReturnsDetachedCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Update("sid", func(c *Cart) {
		c.AddMeal(MealLine{ItemID: 1, Name: "Dish", UnitPrice: price(10), Quantity: 1}, true)
	})

	copy1, _ := s.Get("sid")
	copy1.Lines[0].Quantity = 99
	copy1.SetTableNumber("7")

	copy2, _ := s.Get("sid")
	assert.Equal(t, 1, copy2.Lines[0].Quantity, "mutating a snapshot must not touch the stored cart")
	assert.Equal(t, "", copy2.TableNumber)
}

func TestDeleteTableDropsMatchingSessions(t *testing.T) {
	s := NewMemoryStore()
	s.Update("at-seven", func(c *Cart) {
		c.SetRestaurant(1)
		c.SetTableNumber("7")
	})
	s.Update("at-nine", func(c *Cart) {
		c.SetRestaurant(1)
		c.SetTableNumber("9")
	})
	s.Update("other-restaurant", func(c *Cart) {
		c.SetRestaurant(2)
		c.SetTableNumber("7")
	})

	s.DeleteTable(1, "7")

	_, ok := s.Get("at-seven")
	assert.False(t, ok, "closed table's session is gone")
	_, ok = s.Get("at-nine")
	assert.True(t, ok)
	_, ok = s.Get("other-restaurant")
	assert.True(t, ok, "same table number at another restaurant survives")
}
