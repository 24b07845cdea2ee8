// Package feed parses the YAML feeds that drive a sync run.
//
// The companies feed is a mapping of company key to attributes:
//
//	acme:
//	  name: Acme Corp
//	  url: https://acme.example
//	  local: true
//
// The jobs feed is a sequence of company groups, each holding batches of postings
// that share a post date:
//
//	- company: acme
//	  jobs:
//	    - post_date: 2024-01-10
//	      jobs:
//	        - title: Engineer
//	          link: https://acme.example/jobs/1
//	          remote: false
//	        - title: Support
//	          indeed: 4b1f3e2a9c
//
// Feeds are read from local paths or from "s3://bucket/object" URIs. Document
// order is preserved in both shapes because it drives matching and link
// disambiguation downstream.
package feed
