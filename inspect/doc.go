// Package inspect is the host side of synced maps: it loads persisted
// documents, resolves paths into them and reports or removes duplicate
// mirror rows.
//
// A synced map node is a mapping holding a sequence of {key, value} rows
// under the configured pairs field and, optionally, a comparer name under
// the comparer field:
//
//	spawns:
//	  comparer: fold
//	  pairs:
//	    - key: North
//	      value: 1
//
// Documents are fetched and stored through github.com/viant/afs, so any of
// its storage schemes can be used as a URL.
package inspect
