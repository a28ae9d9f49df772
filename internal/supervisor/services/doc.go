// Pickrec - Restaurant Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pickrec

/*
Package services provides suture.Service wrappers for Pickrec components.

HTTPServerService translates http.Server's blocking ListenAndServe into
suture's context-aware Serve and drains connections on shutdown.

ReloadService refetches the restaurant catalog on a fixed interval and
publishes a freshly built similarity index through an IndexRefresher
(normally *recommend.Holder). Reload failures are logged and counted in
catalog_reloads_total; the previously published index keeps
serving requests.

Every service implements fmt.Stringer so supervisor events name it.
*/
package services
