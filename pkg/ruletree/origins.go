package ruletree

import "github.com/edgetools/akaget/pkg/jsonutil"

// Origin types with a known hostname location. Other types carry no
// address we can report, so they are skipped.
const (
	originTypeCustomer   = "CUSTOMER"
	originTypeNetStorage = "NET_STORAGE"
)

// Origins returns the origin behaviors of the index in document order,
// or nil when the tree has none.
func (idx *Index) Origins() []Behavior {
	return idx.BehaviorsByName["origin"]
}

// OriginHostnames extracts the origin server hostnames from the origin
// behaviors, in document order. Customer origins report their hostname;
// NetStorage origins report the download domain.
func OriginHostnames(origins []Behavior) []string {
	var hosts []string
	for _, b := range origins {
		switch jsonutil.GetStringByPath(b, "$.options.originType") {
		case originTypeCustomer:
			if h := jsonutil.GetStringByPath(b, "$.options.hostname"); h != "" {
				hosts = append(hosts, h)
			}
		case originTypeNetStorage:
			if h := jsonutil.GetStringByPath(b, "$.options.netStorage.downloadDomainName"); h != "" {
				hosts = append(hosts, h)
			}
		}
	}
	return hosts
}
