// Package perm reconciles ownership and modes on the files MAAS manages
// for the BIND DNS subsystem. A Spec names the required owner, group and
// (optionally) mode for one path; Apply brings the path into line if it
// exists. Apply never creates anything — packaging and the DNS bootstrap
// tool own creation.
//
// Expected permission matrix after reconciliation (deb layout):
//
//	Path                                           Owner:Group    Mode
//	─────────────────────────────────────────────  ─────────────  ────
//	/var/log/maas/maas.log                         maas:maas      -
//	/var/log/maas/rsyslog/ (recursive)             syslog:syslog  -
//	/var/lib/maas/secret                           maas:maas      0640
//	/var/lib/maas/maas_id                          maas:maas      -
//	/etc/bind/maas/                                maas:-         -
//	/etc/bind/maas/* (recursive)                   maas:maas      -
//	/etc/bind/maas/named.conf.maas                 maas:maas      0644
//	/etc/bind/maas/named.conf.options.inside.maas  maas:maas      0644
//	/etc/bind/maas/rndc.conf.maas                  maas:root      0600
//	/etc/bind/maas/named.conf.rndc.maas            maas:bind      0640
//
// Absent paths are skipped silently. A chown or chmod rejected on an
// existing path aborts the whole reconciliation run.
package perm
