// Package model defines the core data structures used throughout
// the fresh-releases application.
//
// # Release
//
// Release is one music release as returned by the ListenBrainz fresh
// releases endpoints:
//
//	r := model.Release{ReleaseName: "Title", ArtistCreditName: "Artist", PrimaryType: "Album"}
//	fmt.Println(r.TypeLabel()) // "Album"
//
// # Criteria
//
// Criteria holds the filter and sort options of a release view:
//
//	c := model.DefaultCriteria()
//	c.ReleaseTags = model.NewStringSet("jazz")
//	c.SortKey = model.SortArtistCreditName
//
// # Display Settings
//
// DisplaySettings controls which columns of the view are rendered:
//
//	d := model.DefaultDisplaySettings().Toggle(model.ColumnTags)
//
// Available columns: Release Title, Artist, Information, Tags, Listens
package model
