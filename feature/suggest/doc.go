// Package suggest serves the typeahead endpoints {base}/suggest/entity and
// {base}/suggest/type.
//
// Entity suggestions come from the datastore and are paged with the cursor
// parameter; type suggestions are matched in memory against the profile's
// type catalog. Property suggestions answer 404.
package suggest
