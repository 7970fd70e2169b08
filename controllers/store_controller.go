package controllers

import "fmt"

// viewStores lists every store with its open status and review score.
func (s *Session) viewStores() {
	stores, err := s.stores.ListStores()
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	if len(stores) == 0 {
		fmt.Fprintln(s.out, "No stores available.")
		return
	}

	fmt.Fprintln(s.out, "All Stores:")
	for _, store := range stores {
		fmt.Fprintf(s.out, "Store ID: %d, Address: %s, City: %s, State: %s, Open Status: %s, Review Score: %g\n",
			store.StoreID, store.Address, store.City, store.State, store.IsOpen, store.ReviewScore)
	}
}
