// Package hdfs provides the filesystem contract of
// [github.com/ljodea/arrow/fs/core] over an HDFS namenode, speaking
// the native protocol.
//
// Connect dials the namenode described by a Config. The host may be a
// bare hostname, a "hdfs://host" form as produced by URI resolution,
// or "default" to use the cluster configuration from the Hadoop
// environment (HADOOP_CONF_DIR and friends):
//
//	fsys, err := hdfs.Connect(hdfs.Config{Host: "namenode", Port: 9000})
//	if err != nil {
//		...
//	}
//	defer fsys.Close()
//
// Paths are absolute HDFS paths ("/user/alice/data"). Directories are
// native, so the whole contract is supported, including Stat and
// Rename.
package hdfs
