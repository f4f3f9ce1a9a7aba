// Package datasettest provides city files used by the tests of the explorer packages.
package datasettest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ChicagoCSV has 12 trips with gender and birth year.
//   - months: January x4, March x5, June x3
//   - days: Monday x4, Friday x5, Saturday x1, Sunday x2
//   - rows 2 and 9 have no gender nor birth year
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
0,2017-01-01 09:07:57,2017-01-01 09:20:53,776,Canal St,Clark St,Subscriber,Male,1989.0
1,2017-01-02 08:10:00,2017-01-02 08:20:00,600,Canal St,Clark St,Subscriber,Female,1990.0
2,2017-01-02 17:30:00,2017-01-02 17:50:00,1200,State St,Canal St,Customer,,
3,2017-03-03 08:00:00,2017-03-03 08:05:00,300,Clark St,State St,Subscriber,Male,1975.0
4,2017-03-03 08:45:00,2017-03-03 08:52:00,420,Canal St,State St,Subscriber,Male,1989.0
5,2017-03-05 12:00:00,2017-03-05 12:30:00,1800,State St,Clark St,Customer,Female,1980.0
6,2017-03-06 08:15:00,2017-03-07 09:16:01,90061,Canal St,Clark St,Subscriber,Male,1989.0
7,2017-06-05 18:00:00,2017-06-05 18:08:20,500,Clark St,Canal St,Subscriber,Female,2001.0
8,2017-06-09 07:30:00,2017-06-09 07:40:50,650,Canal St,Clark St,Subscriber,Male,1962.0
9,2017-06-10 10:00:00,2017-06-10 10:11:40,700,State St,Canal St,Customer,,
10,2017-03-10 08:05:00,2017-03-10 08:10:50,350,Clark St,State St,Subscriber,Female,1985.0
11,2017-01-06 16:00:00,2017-01-06 16:13:20,800,Canal St,State St,Dependent,Male,1899.0
`

// ChicagoStationsCSV has the coordinates of the ChicagoCSV stations
const ChicagoStationsCSV = `name,latitude,longitude
Canal St,41.8781,-87.6398
Clark St,41.8881,-87.6298
State St,41.8681,-87.6278
`

// WashingtonCSV has 3 trips and no gender nor birth year columns
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
0,2017-01-01 00:07:57,2017-01-01 00:20:53,776.5,A St,B St,Subscriber
1,2017-02-01 10:00:00,2017-02-01 10:01:40,100.25,B St,A St,Customer
2,2017-02-01 11:00:00,2017-02-01 11:03:20,200,A St,B St,Subscriber
`

// WriteFile writes content in dir/name and returns the path of the file
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// DataDir returns a temporary directory with chicago.csv, new_york_city.csv
// (same trips as chicago), washington.csv and chicago_stations.csv
func DataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "chicago.csv", ChicagoCSV)
	WriteFile(t, dir, "new_york_city.csv", ChicagoCSV)
	WriteFile(t, dir, "washington.csv", WashingtonCSV)
	WriteFile(t, dir, "chicago_stations.csv", ChicagoStationsCSV)
	return dir
}
